package commands_test

import (
	"testing"

	"titipin/internal/core/application/usecases/commands"
	"titipin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOfferCommand_ValidInput(t *testing.T) {
	offerID := kernel.NewUUID()
	requesterID := kernel.NewUUID()

	cmd, err := commands.NewAcceptOfferCommand(offerID, requesterID)
	require.NoError(t, err)
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, requesterID, cmd.RequesterID())
}

func TestNewAcceptOfferCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAcceptOfferCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAcceptOfferCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAcceptOfferCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AcceptOfferCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAcceptOfferCommandIsNotConstructed)
}
