// Package ownfm provides an interactive file manager shell confined to a
// single work directory.
//
// Every mutating command resolves its arguments against the current
// directory and refuses anything outside the work directory. The only state
// kept between runs is the work directory itself, stored in a YAML file:
//
//	store, _ := fs.New[ownfm.Config]("~/.own-fm/config.yaml", nil)
//	cfg, _ := ownfm.LoadConfig(ctx, store)
//	srv := ownfm.New(ownfm.WithConfig(cfg), ownfm.WithConfigStore(store))
//	err := srv.Run(ctx)
package ownfm
