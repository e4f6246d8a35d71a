// Package extension holds the registry of operation services the command
// router dispatches to. Hosts embedding the shell can register additional
// services through the root ownfm package.
package extension
