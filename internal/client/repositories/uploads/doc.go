// Package uploads keeps the local log of photos the user uploaded.
//
// Entries are created from the API's upload result and stamped with the local
// time in epoch milliseconds. The store assigns ids; deleting by record uses
// that id. The delete hash is kept so the remote copy can be removed later.
package uploads
