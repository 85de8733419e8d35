package main

import (
	"context"
	"io"
	"os"
	"time"

	pdfoverlay "github.com/alnah/go-pdfoverlay"
)

// Renderer is the subset of *pdfoverlay.Service used by the CLI.
type Renderer interface {
	ParseConfig(data []byte) (*pdfoverlay.Config, error)
	Render(ctx context.Context, req pdfoverlay.Request) (*pdfoverlay.Result, error)
}

// Compile-time check that the production service satisfies Renderer.
var _ Renderer = (*pdfoverlay.Service)(nil)

// Environment holds injectable dependencies for testability.
// Stdout carries exactly one JSON envelope per invocation; diagnostics go to Stderr.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	NewRenderer func(opts ...pdfoverlay.Option) Renderer
}

// DefaultEnv returns the production environment backed by pdfoverlay.New.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewRenderer: func(opts ...pdfoverlay.Option) Renderer {
			return pdfoverlay.New(opts...)
		},
	}
}
