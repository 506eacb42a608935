// Package parser turns the two supported process configuration formats into
// ordered process descriptors.
//
// The structured format is an INI document with one section per process:
//
//	[web]
//	directory = ~/src/web
//	command = bundle exec rails s -p $PORT
//	index = 1
//	sleep = 2
//
// The line format is a Procfile, one "label: command" pair per line. It can
// only express labels and commands; every other attribute keeps its default.
//
// Parsers never substitute $PORT. Port assignment depends on the whole
// configuration and is done by the config resolver.
package parser
