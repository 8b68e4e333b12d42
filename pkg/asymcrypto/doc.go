// Package asymcrypto is the high-level entry point: it assembles a keypair
// engine and the ECDSA, Schnorr and SM2 signature engines over a named Suite.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/asymcrypto/pkg/asymcrypto"
//
//	client, err := asymcrypto.NewClient(asymcrypto.SM2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	kp, err := client.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := client.Sign(asymcrypto.SchemeSM2, kp, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok := client.Verify(asymcrypto.SchemeSM2, kp.Public(), []byte("hello"), sig)
//
// # Suites
//
// A Suite fixes the group, the seed hash and the message hash:
//
//	sm2        SM2 P-256, SHA3-512 seeds, SM3 messages
//	secp256k1  secp256k1, SHA3-512 seeds, SHA3-256 messages
//	ed25519    edwards25519, SHA3-512 seeds, SHA3-256 messages
//
// Custom suites can be built from any group.Group and digest.Algorithm as long
// as the seed hash is twice and the message hash exactly the scalar width.
//
// # Batch Verification
//
// BatchVerify checks many items concurrently:
//
//	items, err := (&asymcrypto.JSONParser{}).ParseItems("batch.json")
//	report, err := client.BatchVerify(ctx, items, 8)
//	fmt.Printf("%d valid, %d invalid\n", report.Valid, report.Invalid)
//
// Implement ItemParser to read items from other sources and pass it with
// WithParser; VerifyFile then parses and verifies in one call.
package asymcrypto
