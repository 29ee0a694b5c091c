// Package model contains the data structures shared between the upload
// service, the UI, and the recognition server: upload tasks, task
// statuses, and the recognition result payload.
package model
