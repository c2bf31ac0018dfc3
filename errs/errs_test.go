package errs

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"nil", nil, KindNone},
		{"plain", errors.New("plain"), KindNone},
		{"sentinel", ErrNotSupported, NotSupported},
		{"wrapped sentinel", fmt.Errorf("compress Lzo1b: %w", ErrNotSupported), NotSupported},
		{"outer kind wins", fmt.Errorf("%w: %w", ErrDecompressFailed, ErrOutputOverrun), BadAddress},
		{"illegal data", fmt.Errorf("%w: %w", ErrCorruptData, ErrOutputOverrun), IllegalData},
		{"foreign error tagged", Wrap(NoSuchFile, os.ErrNotExist), NoSuchFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(BadAddress, nil))

	err := Wrap(NoSuchFile, os.ErrNotExist)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, os.ErrNotExist.Error(), err.Error())

	var tagged *Error
	require.ErrorAs(t, err, &tagged)
	require.Equal(t, NoSuchFile, tagged.Kind())
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 1, ExitCode(errors.New("unclassified")))
	require.Equal(t, 19, ExitCode(ErrNoDevice))
	require.Equal(t, 2, ExitCode(Wrap(NoSuchFile, os.ErrNotExist)))
	require.Equal(t, 22, ExitCode(ErrUnknownFormat))
	require.Equal(t, 95, ExitCode(ErrNotSupported))
	require.Equal(t, 14, ExitCode(ErrNotShrunk))
	require.Equal(t, 84, ExitCode(ErrSourceHashMismatch))
	require.Equal(t, 12, ExitCode(ErrTooLarge))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "IllegalData", IllegalData.String())
	require.Equal(t, "Kind(200)", Kind(200).String())
}
