package steps

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct {
}

// Run loads answers definitions from the vars file. Empty lines and lines starting
// with # are skipped.
func (LoadVarsFile) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if ctx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	varsFile, err := os.Open(ctx.VarsFile)
	if err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, err := parseVarDefinition(line)
		if err != nil {
			return fmt.Errorf("failed to load vars from %s:%d: %s", ctx.VarsFile,
				lineNumber, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", name, value)
		templateCtx.Vars[name] = value
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %s", ctx.VarsFile, err)
	}
	return nil
}
