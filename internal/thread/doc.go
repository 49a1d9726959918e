// Package thread turns a loosely structured plain-text document into a
// thread of posts.
//
// # Document format
//
// Posts are separated by three or more newlines in a row, or by a line made
// only of '-' or '─' characters. Inside a post, lines starting with '[' are
// annotations rather than body text. The closing ']' is optional.
//
// Recognized annotations:
//
//	[table of contents]   placeholder replaced by the synthesized TOC
//	[section: NAME]       a named section starts at this post
//	[image: REF]          an image attached to this post
//	[comment: TEXT]       an author note
//
// Anything else in brackets is kept as an unknown annotation.
//
// # Usage
//
//	posts := thread.Parse(content, thread.Options{AddIndex: true})
//	for _, p := range posts {
//		fmt.Println(p.Body, p.Length, p.Status())
//	}
//
// Parse is Segment followed by Finalize. Callers that want to inspect the
// raw segmentation can call the two steps separately.
package thread
