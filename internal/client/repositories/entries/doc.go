// Package entries keeps the local history of journal entries the server has
// accepted, so the CLI can list what was written from this device.
//
// Image references are stored as a JSON array in a TEXT column; coordinates
// and the place label are stored as they were submitted.
package entries
