// Package model groups the data types the simulator operates on: process
// records and handle queues (proc), lockable resources (resource), workload
// descriptions (workload) and run reports (report). The packages carry no
// behaviour beyond their own consistency; scheduling decisions live in the
// scheduler package and time advancement in the driver.
package model
