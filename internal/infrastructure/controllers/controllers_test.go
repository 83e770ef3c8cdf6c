//go:build unit

package controllers_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/infrastructure/controllers"
	"github.com/rios0rios0/requpdate/test/domain/commanddoubles"
)

// newFlaggedCommand mirrors the persistent flags of the root command.
func newFlaggedCommand(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().BoolP("dryrun", "d", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	require.NoError(t, cmd.Flags().Parse(flags))
	cmd.SetContext(context.Background())
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".requpdate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUpdateController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass flags, path and settings to the command", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, "branch_name: deps/weekly\npackage_manager: [pip]\n")
		repoDir := t.TempDir()
		stub := &commanddoubles.StubUpdateCommand{Report: &entities.UpdateReport{}}
		controller := controllers.NewUpdateController(stub)
		cmd := newFlaggedCommand(t, "-d", "-v", "--config", config)

		// when
		err := controller.Execute(cmd, []string{repoDir})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, entities.RunConfiguration{
			DryRun:     true,
			Verbose:    true,
			RepoDir:    repoDir,
			ConfigPath: config,
		}, stub.LastConfig)
		assert.Equal(t, "deps/weekly", stub.LastSettings.BranchName)
	})

	t.Run("should default the repository to the working directory", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, "package_manager: [pip]\n")
		stub := &commanddoubles.StubUpdateCommand{Report: &entities.UpdateReport{}}
		controller := controllers.NewUpdateController(stub)
		cmd := newFlaggedCommand(t, "--config", config)
		wd, err := os.Getwd()
		require.NoError(t, err)

		// when
		err = controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, wd, stub.LastConfig.RepoDir)
		assert.False(t, stub.LastConfig.DryRun)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, "package_manager: [pip]\n")
		stub := &commanddoubles.StubUpdateCommand{ExecuteErr: entities.ErrDirtyRepository}
		controller := controllers.NewUpdateController(stub)
		cmd := newFlaggedCommand(t, "--config", config)

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		assert.ErrorIs(t, err, entities.ErrDirtyRepository)
	})

	t.Run("should fail without running the command on an invalid config", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, "branch_name: \"dep update\"\n")
		stub := &commanddoubles.StubUpdateCommand{}
		controller := controllers.NewUpdateController(stub)
		cmd := newFlaggedCommand(t, "--config", config)

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.Error(t, err)
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should bind the root usage", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewUpdateController(&commanddoubles.StubUpdateCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "requpdate [path]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}

func TestListController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should run the list command with the repository path", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, "package_manager: [pip]\n")
		repoDir := t.TempDir()
		stub := &commanddoubles.StubListCommand{}
		controller := controllers.NewListController(stub)
		cmd := newFlaggedCommand(t, "--config", config)

		// when
		err := controller.Execute(cmd, []string{repoDir})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, repoDir, stub.LastConfig.RepoDir)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, "package_manager: [pip]\n")
		stub := &commanddoubles.StubListCommand{ExecuteErr: errors.New("pip: not found")}
		controller := controllers.NewListController(stub)
		cmd := newFlaggedCommand(t, "--config", config)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pip")
	})

	t.Run("should be registered as a subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		list := controllers.NewListController(&commanddoubles.StubListCommand{})

		// when
		subcommands := controllers.NewControllers(list)

		// then
		require.Len(t, *subcommands, 1)
		assert.Equal(t, "list [path]", (*subcommands)[0].GetBind().Use)
	})
}
