// Package core defines identity types shared by all rowindex packages.
package core
