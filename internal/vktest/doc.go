// Package vktest holds bindings generated from testdata/vktest.yaml. Its
// tests keep the checked-in files in step with the generator and run the
// generated code.
package vktest
