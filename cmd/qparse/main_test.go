package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nafes-platform/question-service/internal/question/parser"
)

func TestRunPrintsResult(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("ما عاصمة مصر؟ | القاهرة | القاهرة, الجيزة"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	var res parser.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.True(t, res.IsValid)
	assert.Equal(t, parser.FormatPipe, res.Format)
}

func TestRunConverts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-to", "pipe"}, strings.NewReader("# ما عاصمة مصر؟\n- القاهرة ✓\n- الجيزة"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "ما عاصمة مصر؟ | القاهرة | القاهرة, الجيزة\n", stdout.String())
}

func TestRunInvalidExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-to", "markdown"}, strings.NewReader("not a question"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.NotEmpty(t, stderr.String())
}

func TestRunBatchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.txt")
	require.NoError(t, os.WriteFile(path, []byte("س١ طويل نسبيا | أ | أ, ب\nس٢ طويل نسبيا | ج | ج, د\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-batch", "-to", "pipe", path}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "س١ طويل نسبيا | أ | أ, ب\n---\nس٢ طويل نسبيا | ج | ج, د\n", stdout.String())
}

func TestRunBadFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-to", "yaml"}, strings.NewReader("Q | A | A, B"), &stdout, &stderr)
	assert.Equal(t, 2, code)
}
