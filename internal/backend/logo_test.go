package backend

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoolLogo_RoundTrip(t *testing.T) {
	logo, err := SpoolLogo("mi-logo.png", strings.NewReader("image-data"))
	require.NoError(t, err)
	defer logo.Release()

	assert.Equal(t, "mi-logo.png", logo.Name())
	assert.Equal(t, int64(len("image-data")), logo.Size())

	r, err := logo.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "image-data", string(data))
}

func TestSpoolLogo_ReleaseRemovesFile(t *testing.T) {
	logo, err := SpoolLogo("logo.png", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(logo.path)
	require.NoError(t, err)

	logo.Release()

	_, err = os.Stat(logo.path)
	assert.True(t, os.IsNotExist(err))

	// Idempotent.
	logo.Release()
}

func TestSpoolLogo_DefaultName(t *testing.T) {
	logo, err := SpoolLogo("", strings.NewReader("x"))
	require.NoError(t, err)
	defer logo.Release()

	assert.Equal(t, "logo", logo.Name())
}

func TestSpoolLogo_StripsDirectoryFromName(t *testing.T) {
	logo, err := SpoolLogo("../../etc/passwd.png", strings.NewReader("x"))
	require.NoError(t, err)
	defer logo.Release()

	assert.Equal(t, "passwd.png", logo.Name())
}
