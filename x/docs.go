/*
Package x contains some standard extensions

Extensions are sub-packages that provide a message handler and the models
that handler works on. Shared helpers used by several extensions, like the
Authenticator abstraction, live in this package.
*/
package x
