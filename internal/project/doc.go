// Package project scaffolds a new project: it copies the framework's base
// template, runs the feature generators, records the package manager and
// initializes a git repository.
package project
