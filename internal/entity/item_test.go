package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeroops/lostfound/internal/entity"
)

func TestParseItemStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    entity.ItemStatus
		wantErr bool
	}{
		{raw: "on-hand", want: entity.StatusOnHand},
		{raw: "in-process", want: entity.StatusInProcess},
		{raw: "delivered", want: entity.StatusDelivered},
		{raw: "archived", want: entity.StatusArchived},
		{raw: "onHand", want: entity.StatusOnHand},
		{raw: "inProcess", want: entity.StatusInProcess},
		{raw: "", wantErr: true},
		{raw: "lost", wantErr: true},
		{raw: "ON-HAND", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseItemStatus(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseItemStatus_ExternalVocabularyMatchesInternal(t *testing.T) {
	t.Parallel()

	pairs := map[string]string{
		"on-hand":    "onHand",
		"in-process": "inProcess",
		"delivered":  "delivered",
		"archived":   "archived",
	}

	for external, internal := range pairs {
		gotExternal, err := entity.ParseItemStatus(external)
		require.NoError(t, err)

		gotInternal, err := entity.ParseItemStatus(internal)
		require.NoError(t, err)

		require.Equal(t, gotInternal, gotExternal)
	}
}

func TestUserRefDisplay(t *testing.T) {
	t.Parallel()

	resolved := entity.UserRef{User: &entity.UserSummary{FirstName: "Dana", LastName: "Reyes"}}
	require.Equal(t, "Dana", resolved.Display().FirstName)

	placeholder := entity.UnknownUser()
	require.Equal(t, "Unknown", placeholder.FirstName)
	require.Equal(t, "User", placeholder.LastName)
	require.True(t, placeholder.ID.IsNil())
}
