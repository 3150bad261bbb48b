// Package config provides configuration management for the folio CLI.
//
// Settings come from, in order of precedence: FOLIO_* environment variables,
// a folio.yaml file (the --config flag, then ./folio.yaml, then
// $XDG_CONFIG_HOME/folio/folio.yaml), and built-in defaults:
//
//	version: 1
//	docs_dir: .
//	posts_dir: blog/posts
//	site_url: ""
//	use_directory_urls: true
//	recent_limit: 6
//	include: ["**/*.md"]
//	exclude: []
//	default_hide: [navigation]
//
// [Load] validates what it reads; [Validate] can be called directly and
// returns every problem found rather than stopping at the first.
package config
