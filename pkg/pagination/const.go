package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 20

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100
