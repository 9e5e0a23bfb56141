package priority

// Version identifies the queue library release.
const Version = "Priority Queue Lib v1.02"
