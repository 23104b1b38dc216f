// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to fetch, persist, update,
// or remove items, abstracting SQL away from the service layer. No other
// component issues SQL against the store.
package repository
