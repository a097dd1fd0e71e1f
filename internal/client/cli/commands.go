package cli

func (a *App) commands() commandSet {
	return newCommandSet(
		command{name: "login", usage: "[email]  sign in", run: a.Login},
		command{name: "logout", usage: "sign out", auth: true, run: a.Logout},
		command{name: "whoami", usage: "show the signed-in user", auth: true, run: a.WhoAmI},

		command{name: "ls", aliases: []string{"l", "list"}, usage: "list the current folder", auth: true, run: a.List},
		command{name: "cd", usage: "<n|id|..|/>  open a folder", auth: true, run: a.Cd},
		command{name: "search", usage: "[term]  filter the current folder", auth: true, run: a.Search},
		command{name: "more", usage: "load the next page", auth: true, run: a.More},
		command{name: "sel", usage: "<n|id>...  toggle selection", auth: true, run: a.Select},
		command{name: "upload", usage: "<path>  upload a certificate here", auth: true, run: a.Upload},
		command{name: "mkdir", usage: "<name>  create a folder here", auth: true, run: a.Mkdir},
		command{name: "rm", usage: "[n|id]...  delete items or the selection", auth: true, run: a.Remove},
		command{name: "mv", usage: "<n|id> <name>  rename", auth: true, run: a.Rename},
		command{name: "fav", usage: "<n|id>  toggle favorite", auth: true, run: a.Favorite},

		command{name: "approve", usage: "<n|id>  approve a certificate", auth: true, run: a.Approve},
		command{name: "reject", usage: "<n|id> [reason]  reject a certificate", auth: true, run: a.Reject},
		command{name: "revert", usage: "<n|id>  return a certificate to pending", auth: true, run: a.Revert},
		command{name: "history", usage: "<n|id>  show inspection history", auth: true, run: a.History},

		command{name: "view", usage: "<n|id>  preview a document", auth: true, run: a.View},
		command{name: "next", usage: "next document in the preview", auth: true, run: a.viewerKey("right")},
		command{name: "prev", usage: "previous document in the preview", auth: true, run: a.viewerKey("left")},
		command{name: "zoom", usage: "<+|-|0>  zoom the preview", auth: true, run: a.Zoom},
		command{name: "close", usage: "close the preview", auth: true, run: a.viewerKey("esc")},

		command{name: "users", usage: "[filter]  list users", auth: true, run: a.Users},
		command{name: "orgs", usage: "[filter]  list organizations", auth: true, run: a.Orgs},
		command{name: "useradd", usage: "add a user", auth: true, run: a.SaveUser},
		command{name: "useredit", usage: "<id>  edit a user", auth: true, run: a.SaveUser},
		command{name: "userdel", usage: "<id>  delete a user", auth: true, run: a.DeleteUser},
		command{name: "orgadd", usage: "add an organization", auth: true, run: a.SaveOrg},
		command{name: "orgedit", usage: "<id>  edit an organization", auth: true, run: a.SaveOrg},

		command{name: "inbox", usage: "[all]  list notifications", auth: true, run: a.Inbox},
		command{name: "read", usage: "<id>  mark a notification read", auth: true, run: a.MarkRead},
		command{name: "notify", usage: "<user id>  send a notification", auth: true, run: a.Notify},
	)
}
