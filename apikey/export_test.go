package apikey

// FromLookup exports fromLookup for testing.
var FromLookup = fromLookup
