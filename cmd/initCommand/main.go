package initCommand

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/repository/config"
	"github.com/t-kuni/vecho/domain/repository/file"
)

const gitignoreEntry = "/.vecho"

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a vecho.yml in the current directory",
		Long:         `Create a vecho.yml configuration file with default values in the current directory and ignore the .vecho log directory in .gitignore.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return eris.Wrap(err, "failed to get working directory")
			}

			configPath := filepath.Join(currentDir, "vecho.yml")
			if fileRepository.Exists(configPath) {
				return eris.New("vecho.yml already exists in the current directory")
			}

			err = configRepository.Write(configPath, config.NewDefaultConfig())
			if err != nil {
				return eris.Wrap(err, "failed to write vecho.yml")
			}

			err = fileRepository.MkdirAll(filepath.Join(currentDir, ".vecho"))
			if err != nil {
				return eris.Wrap(err, "failed to create .vecho directory")
			}

			err = addGitignoreEntry(fileRepository, filepath.Join(currentDir, ".gitignore"))
			if err != nil {
				return eris.Wrap(err, "failed to update .gitignore")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Initialized Vecho. Created vecho.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}

func addGitignoreEntry(fileRepository file.Repository, path string) error {
	var content string
	if fileRepository.Exists(path) {
		data, err := fileRepository.Read(path)
		if err != nil {
			return err
		}
		content = string(data)
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == gitignoreEntry {
			return nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += gitignoreEntry + "\n"

	return fileRepository.Write(path, []byte(content))
}
