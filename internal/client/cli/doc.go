// Package cli provides cachectl, an interactive shell for inspecting and
// tidying the local cache of the Imgur client.
//
// It loads the cache named by the configuration, then reads commands from
// stdin until EOF or "exit":
//
//	help                  list commands
//	account               show the signed-in account
//	logout                forget the signed-in account
//	profile <username>    show a cached profile
//	uploads [asc|desc]    list the upload log (newest first by default)
//	forget <upload-id>    remove an entry from the upload log
//	topics                list cached gallery topics
//	topic <id>            show one topic
//	stats                 summarize the cache
//	exit | quit           leave
package cli
