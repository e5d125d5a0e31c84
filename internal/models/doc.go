// Package models defines the records persisted by the MunchBox backend.
//
// Every record type maps 1:1 onto an entry in one of the JSON collection
// files (menu.json, orders.json, employees.json, reviews.json, users.json,
// settings.json). JSON tags therefore follow the shapes of the existing
// data files, not Go naming conventions: renaming a tag is a data
// migration, not a refactor.
//
// Models reference each other by ID strings, never by pointer, so a
// record can always be marshalled standalone.
package models
