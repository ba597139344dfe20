package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"serverless-crud/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"create-table", "get-all", "get-id", "create", "update", "delete", "smoke"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"function", "profile", "region"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"get-all", "unexpected"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	assert.Error(t, err)
}

func TestArg(t *testing.T) {
	args := []string{"7", "Ada"}
	assert.Equal(t, "7", arg(args, 0))
	assert.Equal(t, "Ada", arg(args, 1))
	assert.Equal(t, "", arg(args, 2))
	assert.Equal(t, "", arg(nil, 0))
}

func TestSmokeAgainstSQLite(t *testing.T) {
	factory := database.NewFactory(database.Options{
		Kind: database.KindSQLite,
		Path: filepath.Join(t.TempDir(), "smoke.db"),
	}, nil)
	defer factory.Close()

	repo, err := database.NewUserRepository(factory, "users")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runSmoke(context.Background(), repo, &out))

	log := out.String()
	assert.Contains(t, log, `User: {"id":1,"name":"John Doe"}`)
	assert.Contains(t, log, `Updated user: {"id":1,"name":"Jane Doe"}`)
	assert.Equal(t, 2, strings.Count(log, "All users: []"))
	assert.Contains(t, log, "Smoke run completed")
}

type failingRepo struct {
	database.Repository
}

func (failingRepo) Init(context.Context) error { return errors.New("connection refused") }

func TestSmokeReportsFailure(t *testing.T) {
	var out bytes.Buffer
	err := runSmoke(context.Background(), failingRepo{}, &out)

	assert.EqualError(t, err, "connection refused")
	assert.Contains(t, out.String(), "Error when running the queries")
}
