package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dir is where snapshots are kept, relative to the package under test
const Dir = "testdata"

// Validate compares obj, encoded as indented JSON, with the snapshot saved for the test.
// The first time a test runs, the snapshot is written instead.
// Calling it more than once in a test requires a distinct name for each call.
func Validate(t *testing.T, obj interface{}, name ...string) bool {
	t.Helper()

	filename := Filename(t, name...)
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		require.NoError(t, write(filename, objJSON))
		return true
	}

	require.NoError(t, err)

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(objJSON))) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

// Filename returns the path of the snapshot for the test
func Filename(t *testing.T, name ...string) string {
	base := strings.ReplaceAll(t.Name(), "/", "-")
	if len(name) > 0 {
		base += "-" + strings.Join(name, "-")
	}

	return filepath.Join(Dir, base+".json")
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644) // nolint:gosec
}
