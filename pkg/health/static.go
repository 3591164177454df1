package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StaticChecker checks that the frontend entry page can be served.
type StaticChecker struct {
	dir string
}

func NewStaticChecker(dir string) *StaticChecker {
	return &StaticChecker{dir: dir}
}

func (c *StaticChecker) Name() string {
	return "static"
}

func (c *StaticChecker) Check(_ context.Context) Result {
	info, err := os.Stat(filepath.Join(c.dir, "index.html"))
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	if !info.Mode().IsRegular() {
		return Result{Status: StatusDown, Message: fmt.Sprintf("%s/index.html is not a file", c.dir)}
	}
	return Result{Status: StatusUp}
}
