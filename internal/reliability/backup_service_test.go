package reliability

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/aristath/bazaar/internal/database"
	testingutil "github.com/aristath/bazaar/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	objects map[string][]byte
	times   map[string]time.Time
	failPut bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, times: map[string]time.Time{}}
}

func (m *memoryStore) Upload(_ context.Context, key string, body io.Reader) error {
	if m.failPut {
		return errors.New("upload refused")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memoryStore) List(_ context.Context, prefix string) ([]ObjectInfo, error) {
	var out []ObjectInfo
	for key, data := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, ObjectInfo{Key: key, Size: int64(len(data)), LastModified: m.times[key]})
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func archiveEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	entries := map[string][]byte{}
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[header.Name] = body
	}
	return entries
}

func TestCreateAndUploadBackup(t *testing.T) {
	portfolioDB, cleanupPortfolio := testingutil.NewTestDB(t, "portfolio")
	defer cleanupPortfolio()
	configDB, cleanupConfig := testingutil.NewTestDB(t, "config")
	defer cleanupConfig()

	store := newMemoryStore()
	svc := NewBackupService(store, []*database.DB{portfolioDB, configDB, nil}, t.TempDir(), "backups/", zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	info, err := svc.CreateAndUploadBackup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "backups/bazaar-backup-20240102-030405.tar.gz", info.Key)
	assert.Positive(t, info.SizeBytes)

	entries := archiveEntries(t, store.objects[info.Key])
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"backup-metadata.json", "config.db", "portfolio.db"}, names)

	var metadata BackupMetadata
	require.NoError(t, json.Unmarshal(entries[metadataFilename], &metadata))
	require.Len(t, metadata.Databases, 2)
	assert.Equal(t, "portfolio", metadata.Databases[0].Name)
	assert.Len(t, metadata.Databases[0].Checksum, 64)
}

func TestCreateAndUploadBackup_NoDatabases(t *testing.T) {
	svc := NewBackupService(newMemoryStore(), nil, t.TempDir(), "", zerolog.Nop())

	_, err := svc.CreateAndUploadBackup(context.Background())
	assert.Error(t, err)
}

func TestCreateAndUploadBackup_UploadFails(t *testing.T) {
	db, cleanup := testingutil.NewTestDB(t, "config")
	defer cleanup()

	store := newMemoryStore()
	store.failPut = true
	svc := NewBackupService(store, []*database.DB{db}, t.TempDir(), "", zerolog.Nop())

	_, err := svc.CreateAndUploadBackup(context.Background())
	assert.Error(t, err)
}

func TestListAndRotateBackups(t *testing.T) {
	store := newMemoryStore()
	for _, key := range []string{
		"b/bazaar-backup-20240101-000000.tar.gz",
		"b/bazaar-backup-20240110-000000.tar.gz",
		"b/bazaar-backup-20240120-000000.tar.gz",
		"b/notes.txt",
	} {
		store.objects[key] = []byte("x")
	}

	svc := NewBackupService(store, nil, t.TempDir(), "b/", zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC) }

	backups, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, backups, 3)
	assert.Equal(t, "b/bazaar-backup-20240120-000000.tar.gz", backups[0].Key)
	assert.Equal(t, int64(24), backups[0].AgeHours)

	deleted, err := svc.RotateOldBackups(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Contains(t, store.objects, "b/bazaar-backup-20240120-000000.tar.gz")
	assert.Contains(t, store.objects, "b/notes.txt")
}

func TestRotateOldBackups_KeepsNewest(t *testing.T) {
	store := newMemoryStore()
	store.objects["bazaar-backup-20230101-000000.tar.gz"] = []byte("x")

	svc := NewBackupService(store, nil, t.TempDir(), "", zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	deleted, err := svc.RotateOldBackups(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestParseBackupTime(t *testing.T) {
	ts, ok := ParseBackupTime("prefix/bazaar-backup-20240102-030405.tar.gz")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), ts)

	_, ok = ParseBackupTime("bazaar-backup-latest.tar.gz")
	assert.False(t, ok)
	_, ok = ParseBackupTime("other.tar.gz")
	assert.False(t, ok)
}

func TestBackupJob(t *testing.T) {
	db, cleanup := testingutil.NewTestDB(t, "cache")
	defer cleanup()

	store := newMemoryStore()
	job := NewBackupJob(NewBackupService(store, []*database.DB{db}, t.TempDir(), "", zerolog.Nop()), 7, zerolog.Nop())

	assert.Equal(t, "database_backup", job.Name())
	require.NoError(t, job.Run())
	assert.Len(t, store.objects, 1)
}
