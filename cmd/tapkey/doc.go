// Package main provides the entry point for tapkey.
//
// tapkey sends one-way key commands to tapkeyd:
//
//	tapkey paste
//	tapkey type A
//	tapkey text "hello world"
//	tapkey backspace -n 3
//	tapkey key super
//	echo "hi" | tapkey shell -q
//	tapkey --profile type status -o json
//
// Exit status: 0 ok, 1 usage, 2 daemon unreachable, 3 permission denied,
// 6 send failed.
package main
