package testUtil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Space struct {
	t       *testing.T
	Dir     string
	CleanUp func()
}

func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	assert.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "")
	assert.NoError(t, err)

	// macOSでは /var と /private/var が同じフォルダを指すため、実体のパスに揃える
	tempDir, err = filepath.EvalSymlinks(tempDir)
	assert.NoError(t, err)

	err = os.Chdir(tempDir)
	assert.NoError(t, err)

	cleanup := func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	}

	return Space{
		t:       t,
		Dir:     tempDir,
		CleanUp: cleanup,
	}
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	err = os.WriteFile(path, content, 0644)
	assert.NoError(s.t, err)
}

func (s Space) MkDir(path string) {
	s.t.Helper()

	err := os.MkdirAll(path, os.ModePerm)
	assert.NoError(s.t, err)
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(path)
	assert.NoError(s.t, err)

	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.NoError(s.t, err)
}

// NewTime はRFC3339形式の文字列から時刻を生成します。
func NewTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
