// Package redis connects the application to a Redis server: URL-based
// configuration from the environment, startup retry, and a healthcheck
// probe. The session package uses the client as an optional session store.
package redis
