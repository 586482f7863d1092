package database

import (
	"path/filepath"
	"testing"

	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{name: "file database", dbPath: filepath.Join(t.TempDir(), "test.db")},
		{name: "nested directory is created", dbPath: filepath.Join(t.TempDir(), "a", "b", "test.db")},
		{name: "empty path falls back to memory", dbPath: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()
			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	dir := t.TempDir()
	dsn, err := sqliteDSN(config.DatabaseConfig{
		Path:              filepath.Join(dir, "p.db"),
		EnableForeignKeys: true,
		EnableWAL:         true,
	})
	require.NoError(t, err)
	assert.Contains(t, dsn, "_foreign_keys=on")
	assert.Contains(t, dsn, "_journal_mode=WAL")

	memory, err := sqliteDSN(config.DatabaseConfig{EnableWAL: true})
	require.NoError(t, err)
	assert.NotContains(t, memory, "WAL")
	assert.Contains(t, memory, ":memory:?")
}

func TestMigrate(t *testing.T) {
	conn, err := Initialize(filepath.Join(t.TempDir(), "migrate.db"), false)
	require.NoError(t, err)
	defer conn.Close()

	assert.NotEmpty(t, conn.PendingTables())
	require.NoError(t, conn.Migrate())
	assert.Empty(t, conn.PendingTables())

	for _, table := range []string{"analyser", "annotation_analyser", "cropped_video", "exercises", "exercise_tags", "section_exercises", "workout_plan"} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}

	// time columns round-trip through the TIME type
	analyser := models.Analyser{Name: "squat", VideoURL: "/uploads/squat.mp4"}
	require.NoError(t, conn.Create(&analyser).Error)
	from := models.NewClockTime(0, 0, 10)
	to := models.NewClockTime(0, 0, 25)
	annotation := models.Annotation{AnalyserID: analyser.ID, TimeFrom: &from, TimeTo: &to, Title: "rep", Color: "#f00"}
	require.NoError(t, conn.Create(&annotation).Error)

	var loaded models.Annotation
	require.NoError(t, conn.First(&loaded, annotation.ID).Error)
	require.NotNil(t, loaded.TimeFrom)
	require.NotNil(t, loaded.TimeTo)
	assert.Equal(t, 10, loaded.TimeFrom.Seconds())
	assert.Equal(t, 25, loaded.TimeTo.Seconds())
	assert.False(t, loaded.Saved)
}

func TestSeedDefaultExercise(t *testing.T) {
	conn, err := Initialize(filepath.Join(t.TempDir(), "seed.db"), false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Migrate())

	created, err := conn.SeedDefaultExercise(1)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = conn.SeedDefaultExercise(1)
	require.NoError(t, err)
	assert.False(t, created, "seeding twice keeps the existing row")

	var exercise models.Exercise
	require.NoError(t, conn.First(&exercise, 1).Error)
	assert.Equal(t, DefaultExerciseName, exercise.Name)

	// new exercises get fresh ids after the seeded one
	next := models.Exercise{Name: "Squat"}
	require.NoError(t, conn.Create(&next).Error)
	assert.Greater(t, next.ID, uint(1))

	created, err = conn.SeedDefaultExercise(0)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(filepath.Join(t.TempDir(), "close.db"), false)
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck())
}

func TestHealthCheck_Nil(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
	assert.Error(t, (&DB{}).HealthCheck())
}
