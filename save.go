package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/stewi1014/juliaview/engine"
)

// saveSnapshot writes frame as a PNG in dir and returns the file's name.
// A partly written file is removed.
func saveSnapshot(dir string, frame *engine.Frame) (name string, err error) {
	name = filepath.Join(dir, fmt.Sprintf("juliaview-%s.png", time.Now().Format("20060102-150405.000")))

	file, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
			name = ""
		}
	}()

	if err = png.Encode(file, frame.Image()); err != nil {
		return name, fmt.Errorf("png.Encode: %w", err)
	}
	return name, nil
}
