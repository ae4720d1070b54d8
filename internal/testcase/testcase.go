// Package testcase discovers input/expected-output file pairs on disk,
// grounded on testcase.h/testcase.cpp's TestCase/TestCaseContainer.
package testcase

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "offlinejudge/pkg/errors"
)

// Case is one input/expected-output file pair, addressed by its index
// within the container it was discovered in.
type Case struct {
	id         int
	InputPath  string
	OutputPath string
}

// ID returns the case's index within its container.
func (c Case) ID() int { return c.id }

// Input reads the case's input file in full.
func (c Case) Input() (string, error) {
	data, err := os.ReadFile(c.InputPath)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.InternalServerError, "read test case input %s", c.InputPath)
	}
	return string(data), nil
}

// Output reads the case's expected-output file in full.
func (c Case) Output() (string, error) {
	data, err := os.ReadFile(c.OutputPath)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.InternalServerError, "read test case output %s", c.OutputPath)
	}
	return string(data), nil
}

// Container holds every test case discovered under one directory.
type Container struct {
	cases []Case
}

// New discovers every file under dir whose extension matches inputExt,
// pairing each with the sibling file of the same base name but outputExt.
// A missing expected-output file for a discovered input is an error, not a
// skip, matching TestCaseContainer::Initialize.
func New(dir, inputExt, outputExt string) (*Container, error) {
	c := &Container{}
	if err := c.Initialize(dir, inputExt, outputExt); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize (re)populates c from dir, discarding any cases already held.
func (c *Container) Initialize(dir, inputExt, outputExt string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return apperrors.Newf(apperrors.InvalidParams, "%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.InternalServerError, "read test case directory %s", dir)
	}

	inputExt = normalizeExt(inputExt)
	outputExt = normalizeExt(outputExt)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	c.cases = nil
	for _, name := range names {
		inputPath := filepath.Join(dir, name)
		fi, err := os.Stat(inputPath)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if filepath.Ext(name) != inputExt {
			continue
		}

		outputPath := replaceExt(inputPath, outputExt)
		outInfo, err := os.Stat(outputPath)
		if err != nil || !outInfo.Mode().IsRegular() {
			return apperrors.Newf(apperrors.NotFound, "%s does not exist or is not a regular file", outputPath)
		}

		c.AddTestCaseFile(inputPath, outputPath)
	}
	return nil
}

// AddTestCaseFile appends one input/output pair directly, bypassing
// directory discovery.
func (c *Container) AddTestCaseFile(inputPath, outputPath string) {
	c.cases = append(c.cases, Case{id: len(c.cases), InputPath: inputPath, OutputPath: outputPath})
}

// ReplaceExtension renames every file under dir matching sourceExt to
// targetExt, for normalizing a judge's test-data naming convention before
// discovery. Mirrors TestCaseContainer::ReplaceExtension, a feature the
// distilled spec omitted but the original implementation carries.
func ReplaceExtension(dir, sourceExt, targetExt string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return apperrors.Newf(apperrors.InvalidParams, "%s is not a directory", dir)
	}

	sourceExt = normalizeExt(sourceExt)
	targetExt = normalizeExt(targetExt)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.InternalServerError, "read directory %s", dir)
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if filepath.Ext(e.Name()) != sourceExt {
			continue
		}
		target := replaceExt(path, targetExt)
		if err := os.Rename(path, target); err != nil {
			return apperrors.Wrapf(err, apperrors.InternalServerError, "rename %s to %s", path, target)
		}
	}
	return nil
}

// Size returns the number of discovered test cases.
func (c *Container) Size() int { return len(c.cases) }

// Empty reports whether the container holds no test cases.
func (c *Container) Empty() bool { return len(c.cases) == 0 }

// At returns the case at index, renumbered to match its position.
func (c *Container) At(index int) (Case, error) {
	if index < 0 || index >= len(c.cases) {
		return Case{}, fmt.Errorf("test case index %d out of range", index)
	}
	tc := c.cases[index]
	tc.id = index
	return tc, nil
}

func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func replaceExt(path, ext string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ext
}
