package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	db := newTestDB(t)
	entries := NewEntryService(db)
	svc := NewExportService(entries)
	ctx := context.Background()

	_, err := entries.Add(ctx, 1, EntryInput{
		Date: testDay(1), Sleep: 7.5, HealthyFood: 3, JunkFood: 1, Exercise: 30, Water: 6, Reading: 20,
		Custom: map[string]float64{"meditation": 15},
	})
	require.NoError(t, err)
	_, err = entries.Add(ctx, 1, EntryInput{Date: testDay(2), Sleep: 8})
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx, 1)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"date", "sleep", "healthy_food", "junk_food", "exercise", "water", "reading", "meditation"}, rows[0])
	assert.Equal(t, []string{"2025-06-01", "7.5", "3", "1", "30", "6", "20", "15"}, rows[1])
	// day 2 never logged meditation: empty cell, not "0"
	assert.Equal(t, "", rows[2][7])
}

func TestImportCSVRoundTrip(t *testing.T) {
	db := newTestDB(t)
	entries := NewEntryService(db)
	svc := NewExportService(entries)
	ctx := context.Background()

	_, err := entries.Add(ctx, 1, EntryInput{
		Date: testDay(1), Sleep: 6, Water: 4, Custom: map[string]float64{"guitar": 25},
	})
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx, 1)
	require.NoError(t, err)

	// import into a fresh user
	n, err := svc.ImportCSV(ctx, 2, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := entries.ListAll(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 6.0, got[0].Sleep)
	assert.Equal(t, 4.0, got[0].Water)
	require.Len(t, got[0].Customs, 1)
	assert.Equal(t, "guitar", got[0].Customs[0].Name)
	assert.Equal(t, 25.0, got[0].Customs[0].Value)
}

func TestImportCSVMissingFixedColumnsDefaultToZero(t *testing.T) {
	db := newTestDB(t)
	entries := NewEntryService(db)
	svc := NewExportService(entries)
	ctx := context.Background()

	in := "date,sleep\n2025-06-03,7\n"
	n, err := svc.ImportCSV(ctx, 1, strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := entries.ListAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7.0, got[0].Sleep)
	assert.Equal(t, 0.0, got[0].Water)
	assert.Empty(t, got[0].Customs)
}

func TestImportCSVRejectsMissingDateColumn(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(NewEntryService(db))

	_, err := svc.ImportCSV(context.Background(), 1, strings.NewReader("sleep,water\n7,4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}
