/*
Package utils contains decorators and helpers that are not bound to any
message type: savepoints, panic recovery, logging and atomic writes.
*/
package utils
