// Package cli implements taskctl, a terminal front end for the taskboard API.
//
// Commands register themselves in DefaultRegistry. The Dispatcher parses the
// common flags, opens the auth session kept in the user's config directory,
// builds the API client and hands both to the selected command.
package cli
