/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Every extension keeps at most one configuration object, serialized with
protobuf and stored under the "_c:<package name>" key. The configuration is
loaded from the genesis file (see InitConfig) and read by handlers with Load.

Not being able to get a configuration value is a critical condition for the
application, handlers must fail the transaction rather than guess a default.
*/
package gconf
