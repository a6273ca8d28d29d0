package complete

// Tags is every Twig tag name offered inside {% %} blocks. The
// formatter's classifier shares this vocabulary; a test keeps the two
// in sync.
var Tags = []string{
	// Block openers
	"apply", "autoescape", "block", "cache", "embed", "for", "if",
	"macro", "sandbox", "set", "spaceless", "trans", "verbatim", "with",
	// Closers
	"endapply", "endautoescape", "endblock", "endcache", "endembed",
	"endfor", "endif", "endmacro", "endsandbox", "endset",
	"endspaceless", "endtrans", "endverbatim", "endwith",
	// Branches
	"else", "elseif",
	// Standalone
	"deprecated", "do", "extends", "flush", "from", "import", "include",
	"use",
}

// Filters offered after a pipe inside expressions.
var Filters = []string{
	"abs", "batch", "capitalize", "column", "convert_encoding",
	"country_name", "currency_name", "currency_symbol", "data_uri",
	"date", "date_modify", "default", "escape", "filter", "first",
	"format", "format_currency", "format_date", "format_datetime",
	"format_number", "format_time", "html_to_markdown", "inky_to_html",
	"inline_css", "join", "json_encode", "keys", "language_name",
	"last", "length", "locale_name", "lower", "map", "markdown_to_html",
	"merge", "nl2br", "number_format", "raw", "reduce", "replace",
	"reverse", "round", "slice", "slug", "sort", "spaceless", "split",
	"striptags", "timezone_name", "title", "trim", "u", "upper",
	"url_encode",
}

// Functions offered inside {{ }} and tag expressions.
var Functions = []string{
	"attribute", "block", "constant", "country_timezones", "cycle",
	"date", "dump", "html_classes", "include", "max", "min", "parent",
	"random", "range", "source", "template_from_string",
}

// Tests offered after the `is` operator.
var Tests = []string{
	"constant", "defined", "divisible by", "empty", "even", "iterable",
	"null", "odd", "same as",
}

// Operators offered inside expressions.
var Operators = []string{
	"and", "b-and", "b-or", "b-xor", "ends with", "in", "is", "matches",
	"not", "or", "starts with",
}

// GlobalVariables always in scope in a template.
var GlobalVariables = []string{
	"_charset", "_context", "_self", "app", "loop",
}

// HTMLTags offered after '<'.
var HTMLTags = []string{
	"a", "abbr", "address", "article", "aside", "audio", "b", "base",
	"blockquote", "body", "br", "button", "canvas", "caption", "cite",
	"code", "col", "colgroup", "datalist", "dd", "del", "details",
	"dfn", "dialog", "div", "dl", "dt", "em", "embed", "fieldset",
	"figcaption", "figure", "footer", "form", "h1", "h2", "h3", "h4",
	"h5", "h6", "head", "header", "hr", "html", "i", "iframe", "img",
	"input", "ins", "kbd", "label", "legend", "li", "link", "main",
	"map", "mark", "meta", "meter", "nav", "noscript", "object", "ol",
	"optgroup", "option", "output", "p", "picture", "pre", "progress",
	"q", "s", "samp", "script", "section", "select", "small", "source",
	"span", "strong", "style", "sub", "summary", "sup", "table",
	"tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "u", "ul", "var", "video", "wbr",
}

// HTMLAttributes offered inside a markup tag.
var HTMLAttributes = []string{
	"accept", "action", "alt", "aria-hidden", "aria-label", "async",
	"autocomplete", "autofocus", "charset", "checked", "class", "cols",
	"content", "contenteditable", "data-", "defer", "disabled",
	"download", "draggable", "enctype", "for", "form", "height", "hidden",
	"href", "hreflang", "id", "lang", "loading", "max", "maxlength",
	"media", "method", "min", "minlength", "multiple", "name",
	"novalidate", "onclick", "pattern", "placeholder", "readonly",
	"rel", "required", "rows", "selected", "size", "sizes", "spellcheck",
	"src", "srcset", "step", "style", "tabindex", "target", "title",
	"type", "value", "width",
}

// CSSProperties offered inside a style region.
var CSSProperties = []string{
	"align-content", "align-items", "align-self", "animation",
	"background", "background-color", "background-image",
	"background-position", "background-repeat", "background-size",
	"border", "border-bottom", "border-color", "border-left",
	"border-radius", "border-right", "border-style", "border-top",
	"border-width", "bottom", "box-shadow", "box-sizing", "clear",
	"color", "content", "cursor", "display", "flex", "flex-basis",
	"flex-direction", "flex-grow", "flex-shrink", "flex-wrap", "float",
	"font", "font-family", "font-size", "font-style", "font-weight",
	"gap", "grid", "grid-area", "grid-column", "grid-row",
	"grid-template-columns", "grid-template-rows", "height",
	"justify-content", "left", "letter-spacing", "line-height",
	"list-style", "margin", "margin-bottom", "margin-left",
	"margin-right", "margin-top", "max-height", "max-width",
	"min-height", "min-width", "object-fit", "opacity", "order",
	"outline", "overflow", "overflow-x", "overflow-y", "padding",
	"padding-bottom", "padding-left", "padding-right", "padding-top",
	"position", "right", "text-align", "text-decoration",
	"text-overflow", "text-transform", "top", "transform", "transition",
	"vertical-align", "visibility", "white-space", "width", "word-break",
	"z-index",
}

// JSKeywords offered inside a script region.
var JSKeywords = []string{
	"async", "await", "break", "case", "catch", "class", "const",
	"continue", "debugger", "default", "delete", "do", "else", "export",
	"extends", "false", "finally", "for", "function", "if", "import",
	"in", "instanceof", "let", "new", "null", "of", "return", "static",
	"super", "switch", "this", "throw", "true", "try", "typeof",
	"undefined", "var", "void", "while", "with", "yield",
}
