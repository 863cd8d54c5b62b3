// Package chat provides the Message entity for per-order chat channels.
// Messages are append-only history entries with server-assigned timestamps;
// real-time delivery is the websocket adapter's concern, persistence and
// ordering are decided here.
package chat
