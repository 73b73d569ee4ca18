package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "pushit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	// Prompts must never block a test run, and saves must stay offline
	os.Setenv("PUSHIT_TEST_NO_INTERACTIVE", "1")
	os.Setenv("GITHUB_TOKEN", "")

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// NewSceneWithRemote creates a scene whose repository has a local bare
// remote wired up as origin, so push paths can run hermetically.
func NewSceneWithRemote(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	return NewScene(t, func(s *Scene) error {
		remoteDir, err := os.MkdirTemp("", "pushit-remote-*")
		if err != nil {
			return err
		}
		t.Cleanup(func() {
			if os.Getenv("DEBUG") == "" {
				os.RemoveAll(remoteDir)
			}
		})

		if err := s.Repo.CreateRemote(remoteDir); err != nil {
			return err
		}

		if setup != nil {
			return setup(s)
		}
		return nil
	})
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("initial", "init")
}
