package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-inventory-go/example/shared/shell"
)

func Test_UserDirectory_IsUserActive(t *testing.T) {
	testCases := []struct {
		description string
		setup       func(d *shell.UserDirectory)
		want        bool
	}{
		{
			description: "registered on creation",
			setup:       func(_ *shell.UserDirectory) {},
			want:        true,
		},
		{
			description: "registered later",
			setup: func(d *shell.UserDirectory) {
				d.RegisterReader("user2")
			},
			want: true,
		},
		{
			description: "contract canceled",
			setup: func(d *shell.UserDirectory) {
				d.CancelReaderContract("user2")
			},
			want: false,
		},
		{
			description: "contract canceled and registered again",
			setup: func(d *shell.UserDirectory) {
				d.CancelReaderContract("user2")
				d.RegisterReader("user2")
			},
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			d := shell.NewUserDirectory("user2")
			tc.setup(d)

			// act
			got := d.IsUserActive("user2")

			// assert
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_UserDirectory_UnknownReaderIsInactive(t *testing.T) {
	// arrange
	d := shell.NewUserDirectory("user1")

	// act
	d.CancelReaderContract("ghost")

	// assert
	assert.False(t, d.IsUserActive("ghost"))
	assert.True(t, d.IsUserActive("user1"))
}
