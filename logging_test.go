package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory and restores the standard logger afterwards
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	flags := log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
}

// TestSetupLogging_DisabledByDefault verifies nothing is written without -debug
func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("Expected message in log file, got %q", data)
	}

	// Log output never reaches the terminal
	if output := log.Writer(); output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

// TestSetupLogging_Rotation verifies an oversized log is moved aside with a timestamp
func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotated := ""
	for _, entry := range entries {
		if entry.Name() != logFileName && strings.HasPrefix(entry.Name(), "blob_") && filepath.Ext(entry.Name()) == ".log" {
			rotated = entry.Name()
		}
	}
	if rotated == "" {
		t.Fatal("Expected to find rotated log file")
	}

	if info, err := os.Stat(filepath.Join(logDir, rotated)); err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated file to keep the old content, got %v %v", info, err)
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file, got %v %v", info, err)
	}
}

func TestSetupLogging_SmallFileAppends(t *testing.T) {
	inTempDir(t)

	first := setupLogging(true)
	if first == nil {
		t.Fatal("Expected non-nil log file")
	}
	log.Println("first run")
	first.Close()

	second := setupLogging(true)
	if second == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer second.Close()
	log.Println("second run")

	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("Expected a single log file below the size limit, got %d", len(entries))
	}
	data, _ := os.ReadFile(filepath.Join(logDir, logFileName))
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("Expected both runs appended, got %q", data)
	}
}
