package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogDisabledWritesNowhere(t *testing.T) {
	var stderr bytes.Buffer
	log.SetOutput(&stderr)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	logger, closeLog, err := openLog("")
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer closeLog()
	if logger.Writer() != io.Discard {
		t.Fatalf("expected discard writer, got %T", logger.Writer())
	}
	logger.Printf("action x: invoke key=0")
	if stderr.Len() != 0 {
		t.Fatalf("disabled logging leaked output: %q", stderr.String())
	}
}

func TestOpenLogWritesToFile(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	})
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	logger, closeLog, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	logger.Printf("action x: invoke key=0")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "invoke key=0") {
		t.Fatalf("expected log line, got %q", data)
	}
}
