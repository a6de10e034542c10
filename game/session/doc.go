// Package session keeps the live Latrones games in memory.
//
// Each session owns one engine.GameEngine built from a rules preset. A game
// lives for as long as its session: it is created, played through
// SelectSquare / SetStartingPieces / Reset, and discarded on Delete or when the
// cleanup routine finds it idle. Nothing is written to disk.
//
// Session IDs are the first 8 hex characters of a random UUID. Lookups are
// case-insensitive so IDs typed by hand still resolve.
//
// The Manager is safe for concurrent use. It does not lock individual engines;
// the service layer serialises calls into a session's engine.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", "classic", rules)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
package session
