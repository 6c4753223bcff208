package portfolio

import "embed"

// ContentFS holds the blog post sources under content/blog.
// Files are read in name order, so the numeric prefix fixes post order.
//
//go:embed content
var ContentFS embed.FS
