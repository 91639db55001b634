package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetPicturesDir(t *testing.T) {
	dir, err := GetPicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if dir == "" {
		t.Fatal("Pictures directory is empty")
	}

	// Should end with the app folder name
	if filepath.Base(dir) != "Zymome" {
		t.Errorf("Expected directory to end with 'Zymome', got: %s", dir)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Sunset over the bay", "Sunset over the bay"},
		{"photos/2024/trip", "photos_2024_trip"},
		{`a\b:c*d?e"f<g>h|i`, "a_b_c_d_e_f_g_h_i"},
		{"line\nbreak", "linebreak"},
		{"  padded  ", "padded"},
		{"", "image"},
		{".", "image"},
		{"..", "image"},
		{"///", "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeFilename(tt.name)
			if result != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.name, result, tt.expected)
			}
		})
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", MaxFilenameLength*2)
	result := SanitizeFilename(long)

	if len([]rune(result)) != MaxFilenameLength {
		t.Errorf("Expected truncation to %d runes, got %d", MaxFilenameLength, len([]rune(result)))
	}
}

func TestUniquePath(t *testing.T) {
	tempDir := t.TempDir()

	// Free path comes back untouched
	first := UniquePath(tempDir, "photo.jpg")
	if first != filepath.Join(tempDir, "photo.jpg") {
		t.Errorf("Expected %s, got %s", filepath.Join(tempDir, "photo.jpg"), first)
	}

	// Occupied path gets " (2)" before the extension
	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	second := UniquePath(tempDir, "photo.jpg")
	if filepath.Base(second) != "photo (2).jpg" {
		t.Errorf("Expected 'photo (2).jpg', got %s", filepath.Base(second))
	}

	// And then " (3)"
	if err := os.WriteFile(second, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	third := UniquePath(tempDir, "photo.jpg")
	if filepath.Base(third) != "photo (3).jpg" {
		t.Errorf("Expected 'photo (3).jpg', got %s", filepath.Base(third))
	}
}

func TestSaveImageBytes(t *testing.T) {
	tempDir := t.TempDir()
	targetDir := filepath.Join(tempDir, "nested", "pictures")
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	path, err := SaveImageBytes(targetDir, "My Photo: Best/Of", ".jpg", data)
	if err != nil {
		t.Fatalf("Failed to save image: %v", err)
	}

	if filepath.Base(path) != "My Photo_ Best_Of.jpg" {
		t.Errorf("Unexpected filename: %s", filepath.Base(path))
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(written) != string(data) {
		t.Error("Saved bytes do not match input")
	}

	// A second save of the same name must not overwrite
	path2, err := SaveImageBytes(targetDir, "My Photo: Best/Of", ".jpg", data)
	if err != nil {
		t.Fatalf("Failed to save second image: %v", err)
	}
	if path2 == path {
		t.Errorf("Expected a fresh path for the second save, got %s twice", path)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.jpg")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	err := OpenFileInManager("")
	if err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}
