package database

import (
	"testing"

	"Tweeter/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_SQLiteMemory(t *testing.T) {
	conf := config.Default()
	conf.Database.Path = ":memory:"

	db, err := NewDB(conf)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestDialector_Unsupported(t *testing.T) {
	_, err := Dialector(&config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestDialector_MySQL(t *testing.T) {
	d, err := Dialector(&config.Database{Driver: config.DriverMySQL, Host: "localhost", Database: "tweeter"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())
}
