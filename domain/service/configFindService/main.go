package configFindService

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/vecho/util/path"
)

var ErrConfigNotFound = eris.New("vecho.yml または vecho.yaml が見つかりませんでした")

type ConfigFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
}

func NewConfigFindService(fileRepository FileRepository) *ConfigFindService {
	return &ConfigFindService{
		fileRepository: fileRepository,
	}
}

// FindConfig はカレントディレクトリから親ディレクトリへ遡って設定ファイルを探します。
// 見つからない場合は ErrConfigNotFound を返します。
func (s *ConfigFindService) FindConfig() (string, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", eris.Wrap(err, "failed to get working directory")
	}

	currentDir, err = path.AfterGetAbsPath(currentDir)
	if err != nil {
		return "", eris.Wrap(err, "failed to resolve working directory")
	}

	for {
		ymlPath := filepath.Join(currentDir, "vecho.yml")
		yamlPath := filepath.Join(currentDir, "vecho.yaml")

		if exists(ymlPath) {
			return ymlPath, nil
		}
		if exists(yamlPath) {
			return yamlPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrConfigNotFound
}

func (s *ConfigFindService) GetProjectRoot(configPath string) string {
	return filepath.Dir(configPath)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
