package workspace

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFile is the environment file generators write to.
const EnvFile = ".env"

// SetEnv upserts KEY=value in the project's env file. An existing line for
// key is replaced in place; otherwise the line is appended.
func SetEnv(ctx context.Context, dir, key, value string) error {
	content := ""
	if Exists(dir, EnvFile) {
		var err error
		if content, err = ReadFile(dir, EnvFile); err != nil {
			return err
		}
	}

	next := UpsertEnv(content, key, value)
	if next == content {
		return nil
	}
	if err := WriteFile(ctx, dir, EnvFile, next); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// UpsertEnv returns content with KEY=value set.
func UpsertEnv(content, key, value string) string {
	line := key + "=" + value

	if hasEnvKey(content, key) {
		re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=.*$`)
		return re.ReplaceAllLiteralString(content, line)
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line + "\n"
}

func hasEnvKey(content, key string) bool {
	vars, err := godotenv.Unmarshal(content)
	if err == nil {
		_, ok := vars[key]
		return ok
	}
	// Unparsable files fall back to a line scan
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=`).MatchString(content)
}

// ReadEnv parses the project's env file. A missing file is an empty map.
func ReadEnv(dir string) (map[string]string, error) {
	if !Exists(dir, EnvFile) {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(Path(dir, EnvFile))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", EnvFile, err)
	}
	return vars, nil
}
