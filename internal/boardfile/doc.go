// Package boardfile loads board definitions written in HCL.
//
// A file holds exactly one labelled board block; every attribute is optional
// and falls back to the base configuration handed to Load:
//
//	board "wide" {
//	  width   = 12
//	  height  = 9
//	  refill  = 3
//	  palette = ["green", "red", "blue"]
//	  seed    = 7
//	}
package boardfile
