package orderstatus_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus(t *testing.T) {
	name, err := kernel.NewName(orderstatus.InitialName)
	require.NoError(t, err)
	description, err := kernel.NewDescription("Order received, waiting for payment.")
	require.NoError(t, err)

	t.Run("should create valid status", func(t *testing.T) {
		s, err := orderstatus.NewOrderStatus(kernel.NewUUID(), name, description, kernel.SystemActor())

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Pending", s.Name().String())
	})

	t.Run("should reject missing name", func(t *testing.T) {
		_, err := orderstatus.NewOrderStatus(kernel.NewUUID(), kernel.Name{}, description, kernel.SystemActor())

		require.ErrorIs(t, err, kernel.ErrNameIsNotConstructed)
	})

	t.Run("should diff rename and delete", func(t *testing.T) {
		s, err := orderstatus.NewOrderStatus(kernel.NewUUID(), name, description, kernel.SystemActor())
		require.NoError(t, err)
		before := s.Clone()

		shipped, err := kernel.NewName("Shipped")
		require.NoError(t, err)
		require.NoError(t, s.Rename(shipped, kernel.SystemActor()))
		s.Delete(kernel.SystemActor())

		assert.Equal(t, []kernel.FieldChange{
			{Field: "name", Before: "Pending", After: "Shipped"},
			{Field: "deleted", Before: "false", After: "true"},
		}, orderstatus.Diff(before, s))
	})
}
