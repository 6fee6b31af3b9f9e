package simplify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, dir, content string) string {
	t.Helper()

	fileName := filepath.Join(dir, "test_"+uuid.NewString()+".lua")

	err := os.WriteFile(fileName, []byte(content), 0o600)
	require.NoError(t, err, "file must be created")

	return fileName
}

func readTestFile(t *testing.T, fileName string) string {
	t.Helper()

	content, err := os.ReadFile(fileName)
	require.NoError(t, err, "file must be read")

	return string(content)
}
