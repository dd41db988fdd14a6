/*
Package bank maintains the bank directory: the mapping from national bank
codes to BICs and institution names that enrichment and lookup endpoints
consult.

The directory is read-mostly. Records live in a DirectoryStore (an in-memory
snapshot fed from a CSV file, or a Postgres table behind the repositories
package) and are swapped atomically on reload. A Service wraps the store with
an optional Redis cache and exposes the two resolve calls the IBAN service
needs:

	svc := bank.NewService(store, loader, cacheSvc, metrics)
	bic, ok := svc.ResolveBIC(ctx, "37040044")
	name, ok := svc.ResolveBankName(ctx, "COBADEFFXXX")

When the directory is file-backed, Watch blocks on an fsnotify watcher and
reloads the snapshot whenever the file is rewritten. A reload that fails
leaves the previous snapshot in place.
*/
package bank
