// seedkit is a command-line tool for working with seed phrases and the keys
// derived from them.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/kardashev-net/seedkit/config"
	"github.com/kardashev-net/seedkit/internal/keystore"
	"github.com/kardashev-net/seedkit/internal/log"
	"github.com/kardashev-net/seedkit/pkg/keypair"
	"github.com/kardashev-net/seedkit/pkg/seedphrase"
)

func main() {
	cfg := config.Default()
	var flags config.Flags

	// Scan for global flags that appear before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--config" && len(args) > 1:
			flags.Config = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--config="):
			flags.Config = args[0][len("--config="):]
			args = args[1:]
		case args[0] == "--datadir" && len(args) > 1:
			flags.DataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			flags.DataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--wordlist" && len(args) > 1:
			flags.Wordlist = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--wordlist="):
			flags.Wordlist = args[0][len("--wordlist="):]
			args = args[1:]
		case args[0] == "--prefix-len" && len(args) > 1:
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fatalf("invalid --prefix-len: %v", err)
			}
			flags.PrefixLen = n
			args = args[2:]
		case args[0] == "--log-level" && len(args) > 1:
			flags.LogLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			flags.LogLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--log-json":
			flags.LogJSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	// The datadir flag takes effect before the config file path resolves,
	// so --datadir relocates the default seedkit.toml too.
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}
	if err := config.LoadFile(cfg, configPath); err != nil {
		fatalf("%v", err)
	}
	config.ApplyFlags(cfg, &flags)
	if err := config.Validate(cfg); err != nil {
		fatalf("%v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatalf("init logging: %v", err)
	}
	log.CLI.Debug().Str("datadir", cfg.DataDir).Str("config", configPath).Msg("configuration loaded")

	dict, err := cfg.Dictionary()
	if err != nil {
		fatalf("load dictionary: %v", err)
	}
	codec := seedphrase.NewCodec(dict)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "gen":
		cmdGen(codec)
	case "encode":
		cmdEncode(codec, cmdArgs)
	case "decode":
		cmdDecode(codec, cmdArgs)
	case "check":
		cmdCheck(codec, cmdArgs)
	case "derive":
		cmdDerive(codec, cmdArgs)
	case "store":
		cmdStore(codec, cmdArgs, cfg.KeystoreDir())
	case "sign":
		cmdSign(cmdArgs, cfg.KeystoreDir())
	case "verify":
		cmdVerify(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: seedkit [global flags] <command> [args]

Global flags:
  --config <path>     Config file (default: <datadir>/seedkit.toml)
  --datadir <path>    Data directory (default: ~/.seedkit)
  --wordlist <path>   Custom word list file (1024 words, one per line)
  --prefix-len <n>    Unique-prefix length of the custom word list
  --log-level <lvl>   debug, info, warn, or error (default: info)
  --log-json          Emit JSON logs

Commands:
  gen                             Generate a new seed and print its phrase
  encode <seed-hex>               Encode a 16-byte hex seed as a phrase
  decode <phrase>                 Decode a phrase back to its hex seed
  check <phrase>                  Validate a phrase
  derive <phrase>                 Print the pubkey and fingerprint for a phrase
  store create <name> [phrase]    Encrypt and store a seed (new one if omitted)
  store list                      List stored seeds
  store show <name>               Decrypt a stored seed and print its phrase
  store delete <name>             Delete a stored seed
  sign <name> <file>              Sign a file with a stored seed's key
  verify <pubkey-hex> <sig-hex> <file>
                                  Verify a signature
`)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// phraseArg joins the remaining arguments so phrases work both quoted and
// bare on the command line.
func phraseArg(args []string) string {
	return strings.Join(args, " ")
}

func cmdGen(codec *seedphrase.Codec) {
	seed, err := seedphrase.RandomSeed()
	if err != nil {
		fatalf("generate seed: %v", err)
	}
	printSeed(codec, seed)
}

func cmdEncode(codec *seedphrase.Codec, args []string) {
	if len(args) != 1 {
		fatalf("usage: seedkit encode <seed-hex>")
	}
	seed, err := seedphrase.SeedFromHex(args[0])
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(codec.ToPhrase(seed))
}

func cmdDecode(codec *seedphrase.Codec, args []string) {
	if len(args) == 0 {
		fatalf("usage: seedkit decode <phrase>")
	}
	seed, err := codec.FromPhrase(phraseArg(args))
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(seed.Hex())
}

func cmdCheck(codec *seedphrase.Codec, args []string) {
	if len(args) == 0 {
		fatalf("usage: seedkit check <phrase>")
	}
	if err := codec.Valid(phraseArg(args)); err != nil {
		fatalf("invalid: %v", err)
	}
	fmt.Println("ok")
}

func cmdDerive(codec *seedphrase.Codec, args []string) {
	if len(args) == 0 {
		fatalf("usage: seedkit derive <phrase>")
	}
	seed, err := codec.FromPhrase(phraseArg(args))
	if err != nil {
		fatalf("%v", err)
	}
	kp := keypair.FromSeed(seed)
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(kp.Public))
	fmt.Printf("fingerprint=%s\n", kp.Fingerprint())
}

func cmdStore(codec *seedphrase.Codec, args []string, ksDir string) {
	if len(args) == 0 {
		fatalf("usage: seedkit store <create|list|show|delete> ...")
	}
	ks, err := keystore.New(ksDir)
	if err != nil {
		fatalf("%v", err)
	}

	switch args[0] {
	case "create":
		if len(args) < 2 {
			fatalf("usage: seedkit store create <name> [phrase]")
		}
		name := args[1]
		var seed seedphrase.Seed
		if len(args) > 2 {
			seed, err = codec.FromPhrase(phraseArg(args[2:]))
			if err != nil {
				fatalf("%v", err)
			}
		} else {
			seed, err = seedphrase.RandomSeed()
			if err != nil {
				fatalf("generate seed: %v", err)
			}
			printSeed(codec, seed)
		}
		password := promptNewPassword()
		if err := ks.Create(name, seed, password, keystore.DefaultKDFParams()); err != nil {
			fatalf("%v", err)
		}
	case "list":
		entries, err := ks.List()
		if err != nil {
			fatalf("%v", err)
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\t%s\n", e.Name, e.Fingerprint, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	case "show":
		if len(args) != 2 {
			fatalf("usage: seedkit store show <name>")
		}
		seed := loadSeed(ks, args[1])
		printSeed(codec, seed)
	case "delete":
		if len(args) != 2 {
			fatalf("usage: seedkit store delete <name>")
		}
		if err := ks.Delete(args[1]); err != nil {
			fatalf("%v", err)
		}
	default:
		fatalf("unknown store command: %s", args[0])
	}
}

func cmdSign(args []string, ksDir string) {
	if len(args) != 2 {
		fatalf("usage: seedkit sign <name> <file>")
	}
	ks, err := keystore.New(ksDir)
	if err != nil {
		fatalf("%v", err)
	}
	message, err := os.ReadFile(args[1])
	if err != nil {
		fatalf("read message: %v", err)
	}
	kp := keypair.FromSeed(loadSeed(ks, args[0]))
	fmt.Println(hex.EncodeToString(kp.Sign(message)))
}

func cmdVerify(args []string) {
	if len(args) != 3 {
		fatalf("usage: seedkit verify <pubkey-hex> <sig-hex> <file>")
	}
	pub, err := hex.DecodeString(args[0])
	if err != nil {
		fatalf("decode pubkey: %v", err)
	}
	sig, err := hex.DecodeString(args[1])
	if err != nil {
		fatalf("decode signature: %v", err)
	}
	message, err := os.ReadFile(args[2])
	if err != nil {
		fatalf("read message: %v", err)
	}
	if !keypair.Verify(pub, message, sig) {
		fatalf("signature invalid")
	}
	fmt.Println("ok")
}

func printSeed(codec *seedphrase.Codec, seed seedphrase.Seed) {
	fmt.Printf("phrase=%s\n", codec.ToPhrase(seed))
	fmt.Printf("seed=%s\n", seed.Hex())
	fmt.Printf("fingerprint=%s\n", keypair.FromSeed(seed).Fingerprint())
}

func loadSeed(ks *keystore.Keystore, name string) seedphrase.Seed {
	password := promptPassword("Password: ")
	seed, err := ks.Load(name, password)
	if err != nil {
		fatalf("%v", err)
	}
	return seed
}

func promptPassword(prompt string) []byte {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fatalf("read password: %v", err)
	}
	return password
}

func promptNewPassword() []byte {
	password := promptPassword("New password: ")
	confirm := promptPassword("Confirm password: ")
	if string(password) != string(confirm) {
		fatalf("passwords do not match")
	}
	return password
}
