// Package scaffold creates new blog post files.
//
// A [Post] is filled in by the caller, completed with [Post.Normalize] and
// written by [Create] to "<dir>/<slug>.md" with a YAML frontmatter block and
// a fixed section skeleton:
//
//	---
//	date: 2023-01-01
//	description: A first post
//	hide:
//	  - navigation
//	tags: []
//	title: Hello World
//	type: post
//	---
//
//	# Hello World <br><small>January 01, 2023</small>
//
//	## Introduction
//	...
package scaffold
