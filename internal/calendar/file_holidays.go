package calendar

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileHolidaySource reads holidays from a local file.
//
// Text format, one holiday per line:
//
//	# comment
//	22-Jan-2024 Ram Mandir consecration
//	26-Jan-2024
//
// Files ending in .json hold a JSON array instead.
type FileHolidaySource struct {
	filePath string
	logger   *zap.Logger
}

// NewFileHolidaySource creates a new FileHolidaySource instance
func NewFileHolidaySource(filePath string, logger *zap.Logger) *FileHolidaySource {
	return &FileHolidaySource{
		filePath: filePath,
		logger:   logger,
	}
}

// LoadHolidays loads holiday data from file
func (fs *FileHolidaySource) LoadHolidays(ctx context.Context, year int) (*HolidaySet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}

	var entries []holidayEntry
	if strings.EqualFold(filepath.Ext(fs.filePath), ".json") {
		entries, err = decodeHolidayJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holiday file %s: %w", fs.filePath, err)
		}
	} else {
		entries, err = fs.parseText(data)
		if err != nil {
			return nil, err
		}
	}

	set := buildHolidaySet(entries, year, fs.logger)

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("year", year),
		zap.Int("holidays", set.Len()))

	return set, nil
}

func (fs *FileHolidaySource) parseText(data []byte) ([]holidayEntry, error) {
	var entries []holidayEntry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: DATE [name...]
		parts := strings.SplitN(line, " ", 2)
		entry := holidayEntry{Date: parts[0]}
		if len(parts) == 2 {
			entry.Name = parts[1]
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday file: %w", err)
	}

	return entries, nil
}
